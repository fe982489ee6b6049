package chunker

// GearTable holds the 256 fixed 64-bit gear constants the boundary
// predicate hashes data bytes through. It is normative: every
// compliant implementation must use a bit-identical table or chunk
// boundaries (and therefore Data-IDs) diverge. Callers must never
// mutate this array.
var GearTable = [256]uint64{
	0xfe03e3d93e7cd4ba, 0x6074d0cdf002a9f8, 0x22ccdaf687043766, 0xb4349aa3ce2c44d6,
	0x5625db9e94f68513, 0x49d3dbca6c8eae39, 0x1a6068f1859f27de, 0x66af65d4deae5fe3,
	0x1800d481237022a5, 0xe4d46ec5757bc45e, 0x015ba85e65408d91, 0xcd5f5c756cae26f8,
	0x7b45d2f86a1bd156, 0xf1f9c9ec069d798a, 0x6836e6b657a3a4cf, 0xf0289a8bfd25e19c,
	0x5b1845681b5df0b7, 0x65873992cc53d349, 0x2a555839b4387b07, 0x6d6b878a06b805a3,
	0xdb3d773cb261f2dc, 0x36ff09fb3d8313bb, 0xe4b1da0653eeb3c1, 0x800a3de29a8f1cd5,
	0xb4f246f3c24ddaad, 0x287a35c905ecc6c9, 0xb8698927328e1519, 0x32925b8c291a518d,
	0xbe35a896a2dc9559, 0x426eaf8edeb53d2a, 0x4ed832c23b8b5c9c, 0xeef063597eb0a1bf,
	0x0cf594bb2bffa0fd, 0xe0915cba33c6ea5f, 0x8d02945915c17d02, 0xa5bc7f44e8f7ae29,
	0x11b0ff3da92a6d30, 0x471d717bdcd0cdea, 0x112031841da01bdb, 0xaf1fc9028be766d7,
	0x072c2c1c4550e768, 0xcd7a9c778ee7f284, 0xf6a76280e7087891, 0x51c45c2858ba58a2,
	0xdb950acd44ecea77, 0x72f2a448e1962fe6, 0xa7ba5523e331c74e, 0xad989522bfeda1a0,
	0xd859328899f227fe, 0xeb2538f77d663641, 0x45b77ee6d3f0fa16, 0xc29ec98533d8fa16,
	0x6d90cac180845506, 0x2aee9d50db129da8, 0xc47f9b0275ebe9f4, 0xd77325ea1d11795e,
	0x1a467ca3a23701b5, 0xe2a815ccfc2e9666, 0x11e5552b5fc4dc02, 0x214e7e7098d42643,
	0x3edd836de023f7f3, 0x92e0524d93becaaf, 0x9d7710a034ccc30f, 0x1a51542b22cf507c,
	0x2e2979dae58cdfec, 0x79b2e31acbb19655, 0xd8f4648129cdc203, 0xdddccb0e06562424,
	0x4c589a6c1d150958, 0xae80b1bc45781fa7, 0xc210bbf52434db37, 0xcd497b579650ec22,
	0xb55b10905f08fb9a, 0xaaf8c8fa39e9a8a2, 0xd5c3cedf4af3dc35, 0x060fca3d5bd63afb,
	0xe684673d54a3937d, 0xd9b4167a6ed7192e, 0x0f6278f466c6717c, 0x0305e458d76e9059,
	0x2ac4b5ec049a3d57, 0x8dd0e010cdd8c822, 0x65e4a619bc1d56e9, 0xc9fb68527805d81c,
	0x5318887b142244e7, 0x1ed9ad07260593d4, 0x7fd1c95b816a9b5d, 0x1d629a38f628159f,
	0x105ae767512b0c1a, 0x4e3e9c17f6ca4945, 0x4cb79b9a7ba109d7, 0x1d9f746d74e3969f,
	0xe2434ed1f2fbbf49, 0x9bec51093c832b73, 0xe0703aab97f4518c, 0xaadf9bbf533cdbe3,
	0x7de1a2f511a085c1, 0x086ea6870cad7a00, 0x2ad83b502ebd4d63, 0x9478c4a0754d5742,
	0xabda4bde6cafeec6, 0xd8d83fa9c6693e7b, 0xb58cc17d404c89a4, 0xcbd6f4c661c93040,
	0x741bb0804a6a9068, 0x0920427dd956b7de, 0x55c1d4293c82c8bd, 0xcfa7ff9388253330,
	0x6942a99e744d6eb2, 0xe0e4166064be312a, 0x13895203016c1a5b, 0x8a9c5dab65a51048,
	0xac3922651029c077, 0x45e1dc85a2f5b130, 0xc8434ad949110b06, 0x5caa8b5da7a5d40c,
	0xa81db3ec7dc29779, 0x48fc31cf84629185, 0x913a52c4c2923912, 0xdbf2ad2658c9473d,
	0x9b696b3ca9d19288, 0xc9bd57077343cfc5, 0xd5efe19d778970cd, 0xb2f106ede3ae3443,
	0xf121116a93d53d7e, 0xef33cb13e8ac5285, 0xf066b82afd5f3c65, 0x56b435d31457e930,
	0xbfee066f751779e4, 0x87f1bfe3e95fdc8e, 0x11b53e13af0f4fba, 0x5dcefceed21bc5ec,
	0x41eafbaf05a2ab5c, 0x156e7be28daa32e2, 0x0f096c7ff04fb9ef, 0x1b4ab2ba10ffe762,
	0xd10f42594981cbbe, 0x27cad3d5be80df14, 0xc2a782ef3182f7c6, 0x3896467f657a2895,
	0x01e0e05ac9e4d6a3, 0x543a60b2a7e1172f, 0x81ca2eedff931334, 0xf05c814a8ef044bf,
	0x06c2e32d84fdcaaf, 0xa63d30eeb0ba253c, 0xf4b8ea070ed8128a, 0x5d95a4fa96279c20,
	0x0d34a99309d29c7d, 0x726ab4b5edfeceec, 0xa8ad18ce4a97240f, 0x94d1780a0dc84546,
	0xe9d68a4f70c1b395, 0xa1bfd7efd89602f5, 0x5e37c7fd2d937d56, 0x72dde5e35d7922e2,
	0xaa6ef57f34deb596, 0xee21aacc8bd37367, 0x46f541338fe0e9fb, 0x1f98d259fb5d4c6f,
	0x4e0750e40a24daa3, 0x39d3402db7d17dd9, 0x70d3aac0d1d96f40, 0xf3d0171b663c4243,
	0xfa589166afdab5af, 0xb2b7531fda0b86cd, 0x4a2a8a3ce6e3df85, 0xb412f439fdab2a9a,
	0x469ef4a0ef15cb20, 0x2c2855d02c08cea3, 0x1199667ff3c7e8e2, 0x2416e4ac05bfb315,
	0x5ee9d7ef7c7a534d, 0x2cff93a75ca0f9b8, 0xe4f3984111d239f3, 0x44ea5a928489f89d,
	0x1dcd4570c8202b5e, 0xf063f607684ecd29, 0x41bbaa98f1f40038, 0x4433d80dac498c69,
	0x55a6f4d907c55526, 0x1ef8dc9ef1d7b9f5, 0xb870abf9ed103493, 0xf270048e9ee9f11c,
	0xebc6b04182e1ceda, 0x9b19cd265af5a6d6, 0x2156ef7817f30771, 0xc397ac95d3508e4d,
	0x058993b0693f44e1, 0xe6e1c8d8de8a961e, 0xb0ea25d7dec976c9, 0xe4faab279f2bd93f,
	0x2c80a01ccb0b9afe, 0x702fe305f154325a, 0xbe23444cc667609e, 0x5411681bc457eaa0,
	0x6f28c47016463ea3, 0x31bbed73d0ba8d51, 0x843d22aecc302d10, 0x81242aea46113b7c,
	0xe9eb99db68d41595, 0x08e3e9c452dd6691, 0xd87ad5245206f424, 0x5e759334e0cddbe4,
	0xa9b6378662fc49d4, 0x72dd8564a85974d6, 0x228a1bbdfc475d0e, 0x43592308861115ee,
	0x6ea82d40ba501b12, 0x6836b473290717df, 0x9163ea0a121a4158, 0x9efd5014d849c027,
	0x801d250ef0b720bf, 0xd1eddd3289bf3553, 0xa2e234a3fca0292e, 0x4c666d54ab6fc789,
	0xe8d5d769f37e641a, 0xb87db2a02a8e298b, 0x8a944def242ccf1a, 0x19943c93dce1dc26,
	0x2a17517da83db347, 0xcffff480a6cb1c06, 0x0bf390b8eeafc779, 0x6fe713da63082738,
	0xa76501c7ab585c3f, 0x4fe978675333bbcb, 0x936a88e0f2dcfd05, 0x62d3b394ab9f0ef7,
	0x80621cffb0861dde, 0x33decd3519b56491, 0xf11425523d5f0215, 0x686d4497c272839c,
	0xf3f25a5ca26f36ec, 0x9a2d9b144e1e3e76, 0x447e30d44b291928, 0xa9452aaa4e27f19b,
	0xd5d15343b76837c3, 0x0fd082997a64dc4f, 0x2b563af8db3246c7, 0xb1556baef2612403,
	0x31208134353c3b2d, 0x69dce19630fd3f65, 0xd64b41e0702d4eec, 0xfee828eb6f1c5547,
	0x06bc216d949c23da, 0x05d08e8cd95457ff, 0xeaa93ff12ea90d19, 0xd8b17651c6eebea8,
	0x31add20ec22f4725, 0xcc043196f6e5c737, 0xef27d0610c3522d2, 0x49d0ecdd1b9f9ed3,
	0xb913cdc3b77b1fab, 0xd9ecd1750d11a11e, 0x192f300abeb16457, 0xc5b41b8d1b9e09c6,
}
